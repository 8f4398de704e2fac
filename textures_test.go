package imdx11

import (
	"errors"
	"testing"

	"github.com/goimgui/imdx11/imdraw"
)

func TestTextureRegistry(t *testing.T) {
	reg := NewTextureRegistry()
	a := &fakeView{fakeHandle: *newFakeHandle("srv-a")}
	b := &fakeView{fakeHandle: *newFakeHandle("srv-b")}

	idA := reg.Register(a)
	idB := reg.Register(b)
	if idA == idB {
		t.Fatalf("Register handed out duplicate id %d", idA)
	}
	if idA == 0 || idB == 0 {
		t.Error("Register handed out the zero id")
	}
	if idA == imdraw.FontTextureID || idB == imdraw.FontTextureID {
		t.Error("Register handed out the font atlas id")
	}
	if got, want := reg.Len(), 2; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}

	view, ok := reg.Lookup(idA)
	if !ok || view != ShaderResourceView(a) {
		t.Errorf("Lookup(%d) = %v, %v; want srv-a, true", idA, view, ok)
	}

	reg.Unregister(idA)
	if _, ok := reg.Lookup(idA); ok {
		t.Error("Lookup succeeded after Unregister")
	}
	if got, want := reg.Len(), 1; got != want {
		t.Errorf("Len after Unregister = %d, want %d", got, want)
	}

	// Unregistered ids are not reused.
	if id := reg.Register(a); id == idA {
		t.Errorf("Register reused unregistered id %d", idA)
	}
}

func TestTextureRegistryReplace(t *testing.T) {
	reg := NewTextureRegistry()
	a := &fakeView{fakeHandle: *newFakeHandle("srv-a")}
	b := &fakeView{fakeHandle: *newFakeHandle("srv-b")}
	id := reg.Register(a)

	if err := reg.Replace(id, b); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if view, _ := reg.Lookup(id); view != ShaderResourceView(b) {
		t.Error("Replace did not swap the view")
	}

	if err := reg.Replace(imdraw.TextureID(999), a); !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("Replace(unknown) err = %v, want ErrTextureNotFound", err)
	}
	if err := reg.Replace(imdraw.FontTextureID, a); !errors.Is(err, ErrReservedTextureID) {
		t.Errorf("Replace(font id) err = %v, want ErrReservedTextureID", err)
	}
}
