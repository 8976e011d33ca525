package main

import "github.com/nikogura/portfolio-render/cmd"

func main() {
	cmd.Execute()
}
