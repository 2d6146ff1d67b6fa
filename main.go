package main

import "github.com/frahmantamala/job-portal/cmd"

func main() {
	cmd.Execute()
}
