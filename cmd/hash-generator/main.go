// Package main is a small operator utility that prints the bcrypt hash for
// a password, for seeding accounts or rotating credentials by hand.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/arcanadaily/arcana-api/internal/service/auth"
)

func main() {
	var password string
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		fmt.Print("Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error reading password:", err)
			os.Exit(1)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if password == "" {
		fmt.Fprintln(os.Stderr, "Usage: hash-generator [password]")
		os.Exit(2)
	}

	hash, err := auth.NewBcryptVerifier().Hash(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating hash:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
