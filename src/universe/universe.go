package universe

// Universe is the command surface of the game consumed by the input layer and the views
type Universe interface {
	Status() Status
	Speed() int
	Options() Options
	Grid() *Grid
	History() *History
	AddTemplate(tmpl Template)
	SettleTemplate(name string)
	NextTick()
	Faster()
	Slower()
	SpawnNoise()
	SpawnGlider()
	KillEverything()
}
