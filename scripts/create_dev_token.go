package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Prints a bearer token accepted by the write routes when JWT_SECRET is set.
//
//	go run scripts/create_dev_token.go -role admin -ttl 2h
func main() {
	role := flag.String("role", "admin", "Token role (admin or user)")
	subject := flag.String("sub", "dev@localhost", "Token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	secret := flag.String("secret", "", "Signing secret, defaults to JWT_SECRET")
	flag.Parse()

	if *role != "admin" && *role != "user" {
		log.Fatalf("Invalid role %q: must be admin or user", *role)
	}

	_ = godotenv.Load()
	if *secret == "" {
		*secret = os.Getenv("JWT_SECRET")
	}
	if *secret == "" {
		log.Fatal("No signing secret: pass -secret or set JWT_SECRET")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  *subject,
		"role": *role,
		"iat":  now.Unix(),
		"exp":  now.Add(*ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(*secret))
	if err != nil {
		log.Fatal("Failed to sign token:", err)
	}

	fmt.Printf("Role: %s\n", *role)
	fmt.Printf("Expires: %s\n", now.Add(*ttl).Format(time.RFC3339))
	fmt.Printf("Authorization: Bearer %s\n", token)
}
