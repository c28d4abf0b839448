package app

import (
	"github.com/specialistvlad/extpoly/internal/registry"
	"github.com/specialistvlad/extpoly/modules/geometry"
	"github.com/specialistvlad/extpoly/modules/measure"
	"github.com/specialistvlad/extpoly/modules/print"
	"github.com/specialistvlad/extpoly/modules/trace"
)

// coreModules is the definitive list of all modules compiled into the
// binary. Kinds must be registered before the behaviors that use them.
var coreModules = []registry.Module{
	&geometry.Module{},
	&print.Module{},
	&measure.Module{},
	&trace.Module{},
}
