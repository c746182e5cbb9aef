package StoreDB

import (
	"github.com/nickyhof/StoreDB/op"
	"github.com/nickyhof/StoreDB/ps"
)

type Instance struct {
	Persistence *ps.Persistence
}

func Open(persistence *ps.Persistence) *Instance {
	return &Instance{
		Persistence: persistence,
	}
}

// Database loads the named database, or starts a new empty one when it has
// never been saved.
func (instance *Instance) Database(name string) (dbOp *op.DatabaseOp, created bool, err error) {
	return op.OpenDatabase(name, instance.Persistence)
}

// Databases lists the saved databases.
func (instance *Instance) Databases() []string {
	return instance.Persistence.ListDatabases()
}
