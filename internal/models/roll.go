package models

// DiceGroup is the outcome of one NdS term of a roll
type DiceGroup struct {
	Count  uint32
	Faces  uint32
	Values []uint32
	Total  uint32
}

// Roll represents an evaluated dice expression
type Roll struct {
	// Expression is the text the user typed
	Expression string

	// Total is the value of the expression
	Total uint32

	// Dice holds each NdS term in evaluation order
	Dice []DiceGroup

	// RolledBy is the name of whoever asked for the roll
	RolledBy string
}
