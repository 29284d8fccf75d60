package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestLoadFileConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(cwd)

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	yamlPath := filepath.Join(dir, ".jfes.yaml")
	if err := os.WriteFile(yamlPath, []byte("strict: true\nindentWidth: 2\npoolSize: 2048\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	origStrict, origIndent, origPool := strictFlag, indentFlag, tokenizePoolSize
	defer func() { strictFlag, indentFlag, tokenizePoolSize = origStrict, origIndent, origPool }()
	strictFlag, indentFlag, tokenizePoolSize = false, 4, 1024

	fresh := &cobra.Command{Use: "jfes"}
	fresh.PersistentFlags().BoolVar(&strictFlag, "strict", false, "")
	fresh.PersistentFlags().IntVar(&indentFlag, "indent", 4, "")
	fresh.Flags().IntVar(&tokenizePoolSize, "pool-size", 1024, "")
	// Cobra normally merges persistent flags into Flags() before running
	// PersistentPreRunE; reproduce that so Changed("strict") resolves.
	fresh.Flags().AddFlagSet(fresh.PersistentFlags())

	if err := loadFileConfig(fresh, nil); err != nil {
		t.Fatalf("loadFileConfig failed: %v", err)
	}

	if !strictFlag {
		t.Error("strictFlag = false, want true after loading .jfes.yaml")
	}
	if indentFlag != 2 {
		t.Errorf("indentFlag = %d, want 2 after loading .jfes.yaml", indentFlag)
	}
	if tokenizePoolSize != 2048 {
		t.Errorf("tokenizePoolSize = %d, want 2048 after loading .jfes.yaml", tokenizePoolSize)
	}
}

func TestLoadFileConfigMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(cwd)

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	fresh := &cobra.Command{Use: "jfes"}
	fresh.PersistentFlags().BoolVar(&strictFlag, "strict", false, "")
	fresh.PersistentFlags().IntVar(&indentFlag, "indent", 4, "")
	fresh.Flags().AddFlagSet(fresh.PersistentFlags())

	if err := loadFileConfig(fresh, nil); err != nil {
		t.Fatalf("loadFileConfig with no .jfes.yaml present should be a no-op, got: %v", err)
	}
}

func TestReadInputInlineTakesPriority(t *testing.T) {
	data, err := readInput("inline", []string{"/does/not/exist.json"})
	if err != nil {
		t.Fatalf("readInput failed: %v", err)
	}
	if string(data) != "inline" {
		t.Fatalf("readInput = %q, want %q", data, "inline")
	}
}

func TestReadInputRequiresOneSource(t *testing.T) {
	if _, err := readInput("", nil); err == nil {
		t.Fatal("readInput() with no expr and no file should fail")
	}
}
