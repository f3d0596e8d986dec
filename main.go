package main

import "github.com/tansell/minishell/cmd"

func main() {
	cmd.Execute()
}
