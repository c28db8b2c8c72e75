package main

import "github.com/dotsentry/dotsentry/cmd/dotsentry"

func main() {
	dotsentry.Execute()
}
