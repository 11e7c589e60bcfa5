package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Score label constants, on the 0-4 rating scale.
const (
	ExcellentValue  = "Excellent"   // Excellent performance
	StrongValue     = "Strong"      // Strong performance
	FairValue       = "Fair"        // Fair performance
	NeedsFocusValue = "Needs Focus" // Needs attention
)

// Color variables for console output.
var (
	ExcellentColor  = color.New(color.FgGreen, color.Bold)
	StrongColor     = color.New(color.FgCyan)
	FairColor       = color.New(color.FgYellow)
	NeedsFocusColor = color.New(color.FgRed, color.Bold)
)

// GetPlainLabel returns a plain text label for an overall score on the 0-4
// scale. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 3.5:
		return ExcellentValue
	case score >= 3.0:
		return StrongValue
	case score >= 2.5:
		return FairValue
	default:
		return NeedsFocusValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)
	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default:
		return NeedsFocusColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. It falls back to os.Stdout when no path is set.
func SelectOutputFile(outputFile string) (*os.File, error) {
	if outputFile == "" {
		return os.Stdout, nil
	}
	file, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outputFile, err)
	}
	return file, nil
}

// TruncateText shortens a string to maxLen runes, appending "..." when
// truncation happened.
func TruncateText(text string, maxLen int) string {
	if maxLen <= 3 {
		maxLen = 4
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for response
// cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".threesixty_cache.db"
	}
	return filepath.Join(homeDir, ".threesixty_cache.db")
}
