package game

type Difficulty struct {
	Name    string
	Lanes   uint8
	Density float64 // chance an eighth-note slot holds a note
}

var Difficulties = map[string]Difficulty{
	"beginner": {Name: "beginner", Lanes: 4, Density: 0.25},
	"normal":   {Name: "normal", Lanes: 4, Density: 0.5},
	"hyper":    {Name: "hyper", Lanes: 4, Density: 0.75},
	"another":  {Name: "another", Lanes: 4, Density: 1},
}
