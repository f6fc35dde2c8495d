// Command tripctl estimates trip budgets and inspects cost data from the
// terminal, sharing the API's cost source and snapshot cache.
package main

func main() {
	Execute()
}
