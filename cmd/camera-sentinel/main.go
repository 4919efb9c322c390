package main

import "github.com/oshokin/camera-sentinel/cmd/camera-sentinel/cmd"

func main() {
	cmd.Execute()
}
