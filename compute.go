package lcsviz

import (
	"github.com/aretw0/lcsviz/internal/runtime"
	"github.com/aretw0/lcsviz/pkg/domain"
)

// Compute runs the engine on a and b as given, without normalization.
func Compute(a, b string) domain.Result {
	return runtime.Compute([]rune(a), []rune(b))
}
