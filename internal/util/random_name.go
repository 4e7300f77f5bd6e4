package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Bold", "Brave", "Bright", "Calm", "Clever", "Crafty", "Daring", "Dashing", "Eager", "Fearless",
	"Fierce", "Gentle", "Golden", "Happy", "Jolly", "Keen", "Lucky", "Mighty", "Nimble", "Patient",
	"Quick", "Quiet", "Royal", "Sly", "Sneaky", "Speedy", "Steady", "Swift", "Wily", "Wise",
}

var animals = []string{
	"Badger", "Bear", "Crane", "Dragon", "Falcon", "Fox", "Gecko", "Heron", "Ibis", "Jaguar",
	"Koi", "Lynx", "Magpie", "Mongoose", "Otter", "Owl", "Panda", "Pangolin", "Raven", "Serpent",
	"Shark", "Sparrow", "Tiger", "Tortoise", "Viper", "Wolf",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a table name for a guest who didn't pick one
func GetRandomName() string {
	adjective := adjectives[random.Intn(len(adjectives))]
	animal := animals[random.Intn(len(animals))]

	return fmt.Sprintf("%s %s", adjective, animal)
}
