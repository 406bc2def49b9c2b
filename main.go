package main

import (
	"fmt"

	"github.com/strelka-io/chatserver/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		fmt.Println(err.Error())
		return
	}
}
