// Package term implements the portfolio terminal: a fixed command table, the
// transcript it appends to and the recall log used for up/down navigation.
package term

// Entry is one transcript line pair: the prompt line and its response.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Greeting is the entry every new session starts with.
var Greeting = Entry{
	Name:        "Hello Human",
	Description: "I am Arulmozhikumar. Type help for more information",
}
