// Command hash_password prints a bcrypt hash suitable for the
// ADMIN_PASSWORD_HASH environment variable.
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	var (
		password string
		cost     int
	)

	flag.StringVar(&password, "password", "", "Plain-text admin password to hash")
	flag.IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if password == "" {
		log.Fatal("usage: hash_password -password <secret> [-cost 10]")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	fmt.Println(string(hash))
}
