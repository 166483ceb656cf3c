// Command marker prints the packet and message markers of an input file.
//
// Usage:
//
//	marker [-input input.txt] [-log-level info] [-packet-size 4] [-message-size 14]
//
// Output is two lines on stdout:
//
//	Part 1: <packet marker>
//	Part 2: <message marker>
//
// MARKER_INPUT and MARKER_LOG_LEVEL, from the environment or a .env file,
// override the flag defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kalbasit/marker"
	"github.com/kalbasit/marker/internal/logger"
)

const (
	stdinPath  = "-"
	dotEnvPath = ".env"
)

func main() {
	err := run(os.Args[1:], dotEnvPath, os.Getenv, os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}

	if err != nil {
		os.Exit(1)
	}
}

// run parses args, searches the input and writes both markers to stdout.
// Nothing is written to stdout unless both markers are found.
//
// Variables from envFile fill in keys that getenv leaves empty, so the real
// environment wins over the file. A missing envFile is not an error.
func run(args []string, envFile string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	dotEnv, envErr := readDotEnv(envFile)
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}

		return dotEnv[key]
	}

	flags := flag.NewFlagSet("marker", flag.ContinueOnError)
	flags.SetOutput(stderr)

	input := flags.String("input", envOr(lookup, "MARKER_INPUT", "input.txt"), "Input file path, or - for stdin")
	logLevel := flags.String("log-level", envOr(lookup, "MARKER_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	packetSize := flags.Int("packet-size", marker.DefaultPacketSize, "Distinct bytes in a start-of-packet marker")
	messageSize := flags.Int("message-size", marker.DefaultMessageSize, "Distinct bytes in a start-of-message marker")

	if err := flags.Parse(args); err != nil {
		return err
	}

	log := logger.New(*logLevel, stderr)

	if envErr != nil {
		log.Warn().Err(envErr).Str("file", envFile).Msg("Ignoring unreadable env file")
	}

	detector, err := marker.NewDetector(
		marker.WithPacketSize(*packetSize),
		marker.WithMessageSize(*messageSize),
	)
	if err != nil {
		log.Error().Err(err).Msg("Invalid marker size")

		return err
	}

	data, err := readInput(*input, stdin)
	if err != nil {
		log.Error().Err(err).Str("file", *input).Msg("Failed to read input")

		return err
	}

	log.Debug().Str("file", *input).Int("bytes", len(data)).Msg("Read input")

	m, err := detector.Detect(data)
	if err != nil {
		log.Error().Err(err).Str("file", *input).Msg("Marker search failed")

		return err
	}

	log.Debug().
		Int("packet_size", detector.PacketSize()).
		Int("packet", m.Packet).
		Int("message_size", detector.MessageSize()).
		Int("message", m.Message).
		Msg("Found markers")

	if _, err := fmt.Fprintf(stdout, "Part 1: %d\nPart 2: %d\n", m.Packet, m.Message); err != nil {
		log.Error().Err(err).Msg("Failed to write result")

		return err
	}

	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}

// readDotEnv parses path as a .env file. A missing file yields no variables
// and no error.
func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return vars, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}

	return fallback
}
