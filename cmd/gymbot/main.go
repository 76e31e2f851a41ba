package main

import "gym_schedule_bot/cmd"

func main() {
	cmd.Execute()
}
