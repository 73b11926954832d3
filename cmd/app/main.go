package main

import (
	"github.com/tunelens/ytmusic-home-api/api/router"
	"github.com/tunelens/ytmusic-home-api/initializers"
)

func init() {
	initializers.LoadEnv()
}

func main() {
	router.SetupServer()
}
