// This binary serves the grange region-parsing API over HTTP, resolving
// reference names against a sequence dictionary file.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/opengenomics/grange/grange-server/regions"
	"github.com/opengenomics/grange/internal/reference"
)

var (
	port = flag.Int("port", 8080, "HTTP service port")

	dict   = flag.String("dict", "", "sequence dictionary file (required)")
	prefix = flag.String("prefix", "", "chromosome prefix stripped from parsed paths")

	profileMode = flag.Bool("profile", false, "write a CPU profile on shutdown")
)

func main() {
	flag.Parse()

	if *profileMode {
		defer profile.Start().Stop()
	}

	if *dict == "" {
		log.Fatalf("You must specify a sequence dictionary with -dict.")
	}
	d, err := reference.Open(*dict)
	if err != nil {
		log.Fatalf("Failed to load dictionary %q: %v", *dict, err)
	}
	log.Printf("Loaded %d reference sequences from %s", d.Len(), *dict)

	session := uuid.New().String()

	router := gin.Default()
	router.GET("/regions/parse", regions.NewParseHandler(*prefix))
	router.GET("/regions/optional", regions.NewOptionalHandler(*prefix))
	router.GET("/regions/resolve", regions.NewResolveHandler(*prefix, d.Resolve))
	router.GET("/healthz", regions.NewHealthHandler(session, d.Len()))

	if err := router.Run(fmt.Sprintf(":%d", *port)); err != nil {
		log.Fatalf("HTTP server returned an error: %v", err)
	}
}
