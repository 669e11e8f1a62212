package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/sporeprotocol/layergen/internal/input"
	"github.com/sporeprotocol/layergen/pkg/codes"
	"github.com/sporeprotocol/layergen/pkg/orchestrator"
	"github.com/sporeprotocol/layergen/pkg/preview"
)

func main() {
	traitsPath := flag.String("traits", "", "trait output document, JSON or YAML")
	schemaPath := flag.String("schema", "", "layer schema document, JSON or YAML")
	output := flag.String("output", "", "output file (stdout if empty)")
	format := flag.String("format", "json", "output format: json or html")
	variant := flag.String("variant", "", "preview theme variant (e.g. dark)")
	flag.Parse()

	ctx := context.Background()

	if err := promptMissing(traitsPath, "Trait output document:"); err != nil {
		log.Fatalf("read trait output path: %v", err)
	}
	if err := promptMissing(schemaPath, "Layer schema document:"); err != nil {
		log.Fatalf("read layer schema path: %v", err)
	}

	traitsBuf, err := input.LoadDocument(*traitsPath)
	if err != nil {
		fail(err)
	}
	schemaBuf, err := input.LoadDocument(*schemaPath)
	if err != nil {
		fail(err)
	}

	var options []orchestrator.Option
	if *variant != "" {
		previewer, err := preview.New(preview.WithVariant(*variant))
		if err != nil {
			fail(err)
		}
		options = append(options, orchestrator.WithPreviewRenderer(previewer))
	}
	gen := orchestrator.New(options...)

	req := orchestrator.Request{TraitOutput: traitsBuf, Schema: schemaBuf}

	var payload []byte
	switch strings.ToLower(*format) {
	case "json":
		payload, err = gen.GenerateJSON(ctx, req)
	case "html":
		payload, err = gen.Preview(ctx, req)
	default:
		log.Fatalf("unknown format %q (want json or html)", *format)
	}
	if err != nil {
		fail(err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			fail(err)
		}
		fmt.Printf("Output written to %s\n", *output)
		return
	}
	fmt.Println(string(payload))
}

// promptMissing asks for the path interactively when the flag was omitted.
func promptMissing(path *string, message string) error {
	if strings.TrimSpace(*path) != "" {
		return nil
	}
	prompt := &survey.Input{Message: message}
	required := survey.WithValidator(survey.Required)
	return survey.AskOne(prompt, path, required)
}

// fail reports the error and exits with its stable numeric code so hosting
// scripts can branch on the decoding contract.
func fail(err error) {
	log.Printf("layergen: %v", err)
	var coded *codes.Error
	if errors.As(err, &coded) {
		os.Exit(int(coded.Code))
	}
	os.Exit(int(codes.Internal))
}
