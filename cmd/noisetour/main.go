package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"log"
	"os"

	"crypto/x509"

	"noisefield/internal/server"
)

const (
	defaultAddr        = ":2222"
	defaultHostKeyPath = "host_key"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	addr := flag.String("addr", defaultAddr, "listen address")
	hostKey := flag.String("hostkey", defaultHostKeyPath, "ssh host key file (created if missing)")
	flag.Parse()

	// Generate host key if it doesn't exist
	if err := ensureHostKey(*hostKey); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	listenAddr := *addr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}

	sshServer := server.NewSSHServer(listenAddr, *hostKey)
	log.Printf("Starting noisefield tour — connect with: ssh -p %s localhost", listenAddr[1:])
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
