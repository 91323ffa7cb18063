package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/trainingtrack/backend/pkg"
)

// generates the bcrypt hash expected in TRAINING_TRACK_PASSWORD_HASH
func main() {
	password := flag.String("password", "", "password to hash")
	flag.Parse()

	if *password == "" {
		fmt.Println("usage: hashgen -password <password>")
		os.Exit(1)
	}

	hash, err := pkg.HashPassword(*password)
	if err != nil {
		fmt.Printf("generate hash: %s\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
