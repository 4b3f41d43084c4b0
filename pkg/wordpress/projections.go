package wordpress

const mediumSize = "medium"

// Image is the featured image of an article. URL is nil when the article
// carries no usable embedded media.
type Image struct {
	URL *string `json:"url,omitempty"`
	Alt string  `json:"alt"`
}

// FeaturedImage picks the "medium" rendition of the embedded featured media,
// then the media source URL. A medium entry without a URL is skipped. Alt falls back to the rendered title.
func FeaturedImage(a Article) Image {
	img := Image{Alt: a.Title.Rendered}

	media := featuredMedia(a)
	if media == nil {
		return img
	}
	if media.AltText != nil {
		img.Alt = *media.AltText
	}

	if media.MediaDetails != nil {
		if size, ok := media.MediaDetails.Sizes[mediumSize]; ok && size.SourceURL != "" {
			u := size.SourceURL
			img.URL = &u
			return img
		}
	}
	if media.SourceURL != nil {
		u := *media.SourceURL
		img.URL = &u
	}
	return img
}

// Author returns the first embedded author, or nil.
func Author(a Article) *User {
	if a.Embedded == nil || len(a.Embedded.Author) == 0 {
		return nil
	}
	u := a.Embedded.Author[0]
	return &u
}

// Terms returns the embedded term lists, one per taxonomy, or nil.
func Terms(a Article) [][]Category {
	if a.Embedded == nil {
		return nil
	}
	return a.Embedded.Terms
}

func featuredMedia(a Article) *Media {
	if a.Embedded == nil || len(a.Embedded.FeaturedMedia) == 0 {
		return nil
	}
	return &a.Embedded.FeaturedMedia[0]
}
