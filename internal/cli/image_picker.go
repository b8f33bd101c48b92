package cli

import "github.com/google/uuid"

// ImagePicker supplies photos for the execution report. PickImages returns
// the URIs of the images the user chose; an empty result means nothing was
// picked.
type ImagePicker interface {
	PickImages() []string
}

// ImagePickerFunc adapts a function to ImagePicker.
type ImagePickerFunc func() []string

func (f ImagePickerFunc) PickImages() []string { return f() }

// localImagePicker stands in for a file chooser: every call yields one new
// local object URI.
type localImagePicker struct{}

// NewLocalImagePicker returns the default ImagePicker.
func NewLocalImagePicker() ImagePicker { return localImagePicker{} }

func (localImagePicker) PickImages() []string {
	return []string{"blob:fieldops/" + uuid.NewString()}
}
