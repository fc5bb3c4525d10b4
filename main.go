package main

import "github.com/Bryne19/deanza-course-planner/cmd"

func main() {
	cmd.Execute()
}
