package services

import (
	"math/rand"

	"github.com/google/uuid"
)

var codenamePool = []string{
	"The Nightingale",
	"The Kraken",
	"Phantom Shadow",
	"Iron Falcon",
	"Ghost Whisperer",
	"Cyber Panther",
	"Silent Viper",
	"Storm Breaker",
	"Black Hawk",
	"Omega Phantom",
}

// pickCodename draws random candidates from the pool until one is found that
// is not reserved. reserved holds the names currently carried by non-destroyed
// gadgets, so a destroyed gadget's codename can be handed out again. When the
// whole pool is reserved a generated name is returned instead.
func pickCodename(reserved map[string]bool, rng *rand.Rand) string {
	remaining := make([]string, len(codenamePool))
	copy(remaining, codenamePool)
	for len(remaining) > 0 {
		i := rng.Intn(len(remaining))
		name := remaining[i]
		if !reserved[name] {
			return name
		}
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	return "Codename-" + uuid.NewString()[:8]
}
