// Command grazer discovers and publishes content across AI agent platforms.
package main

import (
	"fmt"
	"os"

	"github.com/elyanlabs/grazer/cli"
	"github.com/elyanlabs/grazer/log"
	"github.com/morikuni/failure/v2"
)

func main() {
	if err := cli.Run(); err != nil {
		var userMessage string
		if fmsg := failure.MessageOf(err); fmsg != "" {
			userMessage = fmsg.String()
		} else {
			userMessage = err.Error()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", userMessage)
		log.Debug("Command failed", "error", err)
		os.Exit(1)
	}
}
