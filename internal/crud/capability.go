package crud

import "github.com/gin-gonic/gin"

// Capability names one CRUD route.
type Capability string

const (
	CapList    Capability = "list"
	CapDetail  Capability = "detail"
	CapStore   Capability = "store"
	CapUpdate  Capability = "update"
	CapDelete  Capability = "delete"
	CapRestore Capability = "restore"
)

// All enables every capability.
var All = []Capability{CapList, CapDetail, CapStore, CapUpdate, CapDelete, CapRestore}

type Lister interface {
	List(c *gin.Context)
}

type Detailer interface {
	Detail(c *gin.Context)
}

type Storer interface {
	Store(c *gin.Context)
}

type Updater interface {
	Update(c *gin.Context)
}

type Deleter interface {
	Delete(c *gin.Context)
}

type Restorer interface {
	Restore(c *gin.Context)
}
