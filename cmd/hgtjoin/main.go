// cmd/hgtjoin/main.go
package main

import (
	"hgtjoin/internal/app"
	"hgtjoin/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
