package crud

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type route struct {
	method string
	path   string
	write  bool
	bind   func(handler any) (gin.HandlerFunc, bool)
}

var routes = map[Capability]route{
	CapList: {method: http.MethodGet, path: "", bind: func(h any) (gin.HandlerFunc, bool) {
		v, ok := h.(Lister)
		if !ok {
			return nil, false
		}
		return v.List, true
	}},
	CapDetail: {method: http.MethodGet, path: "/:id", bind: func(h any) (gin.HandlerFunc, bool) {
		v, ok := h.(Detailer)
		if !ok {
			return nil, false
		}
		return v.Detail, true
	}},
	CapStore: {method: http.MethodPost, path: "", write: true, bind: func(h any) (gin.HandlerFunc, bool) {
		v, ok := h.(Storer)
		if !ok {
			return nil, false
		}
		return v.Store, true
	}},
	CapUpdate: {method: http.MethodPatch, path: "/:id", write: true, bind: func(h any) (gin.HandlerFunc, bool) {
		v, ok := h.(Updater)
		if !ok {
			return nil, false
		}
		return v.Update, true
	}},
	CapDelete: {method: http.MethodDelete, path: "", write: true, bind: func(h any) (gin.HandlerFunc, bool) {
		v, ok := h.(Deleter)
		if !ok {
			return nil, false
		}
		return v.Delete, true
	}},
	CapRestore: {method: http.MethodPost, path: "/restore", write: true, bind: func(h any) (gin.HandlerFunc, bool) {
		v, ok := h.(Restorer)
		if !ok {
			return nil, false
		}
		return v.Restore, true
	}},
}

// Register mounts the enabled capabilities of handler on r. Write routes run auth first.
// Nothing is mounted when any enabled capability is unknown or not implemented by handler.
func Register(r gin.IRoutes, handler any, enabled []Capability, auth gin.HandlerFunc) error {
	type mount struct {
		route
		fn gin.HandlerFunc
	}

	mounts := make([]mount, 0, len(enabled))
	for _, c := range enabled {
		rt, ok := routes[c]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCapability, c)
		}
		fn, ok := rt.bind(handler)
		if !ok {
			return fmt.Errorf("%w: %s", ErrCapabilityMissing, c)
		}
		mounts = append(mounts, mount{route: rt, fn: fn})
	}

	for _, m := range mounts {
		handlers := []gin.HandlerFunc{m.fn}
		if m.write && auth != nil {
			handlers = []gin.HandlerFunc{auth, m.fn}
		}
		r.Handle(m.method, m.path, handlers...)
	}
	return nil
}
