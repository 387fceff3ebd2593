//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

var Default = Build

func Build() error {
	mg.Deps(BuildExtract, BuildUpload)
	fmt.Println("Compilation finished")
	return nil
}

func BuildExtract() error {
	fmt.Println("Building hcal-ped-extract executable...")
	return goBuild("./bin/hcal-ped-extract", "./tools/hcal-ped-extract")
}

func BuildUpload() error {
	fmt.Println("Building hcal-db-upload executable...")
	return goBuild("./bin/hcal-db-upload", "./tools/hcal-db-upload")
}

// Test runs the unit tests of every package.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func goBuild(out, pkg string) error {
	cmd := exec.Command("go", "build", "-o", out, pkg)
	cmd.Env = os.Environ()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
