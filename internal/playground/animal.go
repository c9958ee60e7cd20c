package playground

// Animal makes a noise.
type Animal interface {
	MakeNoise() string
}

// DefaultNoise gives any embedding type the fallback noise.
type DefaultNoise struct{}

func (DefaultNoise) MakeNoise() string { return "Bark!" }

// Dog keeps the default noise.
type Dog struct {
	DefaultNoise
}

// Cat overrides the default noise.
type Cat struct {
	DefaultNoise
}

func (Cat) MakeNoise() string { return "Meow!" }
