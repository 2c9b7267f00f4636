// Command secret-hash prints the bcrypt hash of an admin secret, for use as
// ADMIN_SECRET_HASH so the deployment environment never holds the secret in
// clear text.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rockdove/aviation-backend/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <secret>", os.Args[0])
	}

	hash, err := auth.HashSecret(os.Args[1])
	if err != nil {
		log.Fatalf("hash error: %v", err)
	}
	fmt.Println(hash)
}
