package main

import (
	"github.com/YutoSekiguchi/Lyricium/cmd"
)

func main() {
	cmd.Execute()
}
