package filesystem_test

import (
	"fmt"
	"log"

	"github.com/vvka-141/fsnav/internal/files/filesystem"
)

// Example_memoryFileSystem demonstrates building a fixture tree in memory
func Example_memoryFileSystem() {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/project/main.go", "package main")
	mfs.AddFile("/project/internal/util.go", "package internal")

	entries, err := mfs.ReadDir("/project")
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range entries {
		fmt.Printf("%s dir=%v\n", e.Name(), e.IsDir())
	}

	count, err := mfs.CountTree("/project")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Total entries: %d\n", count)

	// Output:
	// internal dir=true
	// main.go dir=false
	// Total entries: 3
}
