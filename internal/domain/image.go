package domain

// Image pairs a display URL with the media host handle that owns it.
//
// A non-empty PublicID means the URL points at the remote media host; an
// empty PublicID with a non-empty URL means the file is served from local
// fallback storage under /uploads. Both are valid resting states.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Remote reports whether the image is backed by a remote asset.
func (i Image) Remote() bool {
	return i.PublicID != ""
}

// Empty reports whether no image is attached at all.
func (i Image) Empty() bool {
	return i.URL == "" && i.PublicID == ""
}
