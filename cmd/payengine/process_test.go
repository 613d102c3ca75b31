package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunProcess_EndToEnd(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "error")

	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit, 1, 1, 10.0",
		"deposit, 1, 2, 15.0",
		"withdrawal, 1, 3, 5.0",
		"dispute, 1, 1,",
		"chargeback, 1, 1,",
		"deposit, 2, 4, 2.5",
		"dispute, 2, 99,",
		"",
	}, "\n")

	dir := t.TempDir()
	inPath := filepath.Join(dir, "transactions.csv")
	outPath := filepath.Join(dir, "accounts.csv")
	if err := os.WriteFile(inPath, []byte(input), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	if err := runProcess(inPath, outPath, false, false); err != nil {
		t.Fatalf("runProcess failed: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := "client,available,held,total,locked\n" +
		"1,10.0000,0.0000,10.0000,true\n" +
		"2,2.5000,0.0000,2.5000,false\n"
	if string(got) != want {
		t.Fatalf("unexpected snapshot:\n%s", got)
	}
}

func TestRunProcess_MissingInput(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "error")

	if err := runProcess(filepath.Join(t.TempDir(), "nope.csv"), "", false, false); err == nil {
		t.Fatal("expected error for missing input file")
	}
}
