package main

import (
	_ "time/tzdata"

	"github.com/rpupo63/omie-site-backend/cmd"
)

func main() {
	cmd.Execute()
}
