package main

import (
	"github.com/modelops/llmadmin/internal/cli"
	"github.com/modelops/llmadmin/internal/common/logtrace"
)

func main() {
	logtrace.InitLogger()
	cli.Execute()
}
