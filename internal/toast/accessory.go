package toast

import (
	"image"
	"reflect"

	"toastkit/internal/ui"
)

// AccessoryKind tells which variant an Accessory holds.
type AccessoryKind int

const (
	AccessoryNone AccessoryKind = iota
	AccessoryImage
	AccessoryView
)

// Accessory is the optional content drawn left of the labels:
// nothing, an image, or a custom view. Only one variant is ever set.
type Accessory struct {
	kind  AccessoryKind
	image image.Image
	view  ui.View
}

// ImageAccessory wraps img. A nil image, including a typed nil pointer, yields
// no accessory.
func ImageAccessory(img image.Image) Accessory {
	if isNil(img) {
		return Accessory{}
	}
	return Accessory{kind: AccessoryImage, image: img}
}

// ViewAccessory wraps v. A nil view, including a typed nil pointer, yields no
// accessory.
func ViewAccessory(v ui.View) Accessory {
	if isNil(v) {
		return Accessory{}
	}
	return Accessory{kind: AccessoryView, view: v}
}

// Kind returns the active variant.
func (a Accessory) Kind() AccessoryKind { return a.kind }

// Image returns the image, or nil unless Kind is AccessoryImage.
func (a Accessory) Image() image.Image { return a.image }

// View returns the custom view, or nil unless Kind is AccessoryView.
func (a Accessory) View() ui.View { return a.view }

// IsNone reports whether no accessory is set.
func (a Accessory) IsNone() bool { return a.kind == AccessoryNone }

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
