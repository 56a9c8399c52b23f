package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("dotmatrix", func() {
	var (
		dir            string
		input, output  string
		stdout, stderr *bytes.Buffer
	)

	run := func(args ...string) error {
		return newApp(stdout, stderr).Run(append([]string{"dotmatrix"}, args...))
	}

	writeImage := func(path string, img image.Image) {
		f, err := os.Create(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		Expect(png.Encode(f, img)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "dotmatrix-cli")
		Expect(err).NotTo(HaveOccurred())
		stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)

		// (0,0,0) then (10,10,10)
		img := image.NewRGBA(image.Rect(0, 0, 2, 1))
		img.SetRGBA(0, 0, color.RGBA{0, 0, 0, 0xff})
		img.SetRGBA(1, 0, color.RGBA{10, 10, 10, 0xff})
		input = filepath.Join(dir, "in.png")
		writeImage(input, img)
		output = filepath.Join(dir, "out.svg")
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("converts an image with the default radius and threshold", func() {
		Expect(run("-i", input, "-o", output)).To(Succeed())
		Expect(stdout.String()).To(Equal(successMessage + "\n"))

		svg, err := os.ReadFile(output)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(svg)).To(Equal(
			`<svg width="8" height="4" viewBox="0 0 8 4" fill="none" xmlns="http://www.w3.org/2000/svg">` + "\n" +
				`<circle cx="8" cy="4" r="2" fill="white"/>` + "\n" +
				`</svg>`,
		))
	})

	It("accepts long flag names", func() {
		Expect(run("--input", input, "--output", output, "--radius", "3", "--threshold", "31")).To(Succeed())
		svg, err := os.ReadFile(output)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(svg)).To(Equal(
			`<svg width="12" height="6" viewBox="0 0 12 6" fill="none" xmlns="http://www.w3.org/2000/svg">` + "\n" +
				`</svg>`,
		))
	})

	It("applies short flags", func() {
		Expect(run("-i", input, "-o", output, "-r", "1", "-t", "0")).To(Succeed())
		svg, err := os.ReadFile(output)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(svg)).To(ContainSubstring(`<circle cx="2" cy="2" r="1" fill="white"/>`))
		Expect(string(svg)).To(ContainSubstring(`<circle cx="4" cy="2" r="1" fill="white"/>`))
	})

	It("overwrites an existing output", func() {
		Expect(os.WriteFile(output, []byte("stale"), 0o644)).To(Succeed())
		Expect(run("-i", input, "-o", output)).To(Succeed())
		svg, err := os.ReadFile(output)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(svg)).To(HavePrefix("<svg"))
	})

	It("reads defaults from a config file and lets flags win", func() {
		cfgPath := filepath.Join(dir, "dotmatrix.yml")
		Expect(os.WriteFile(cfgPath, []byte("radius: 5\nthreshold: 100\n"), 0o644)).To(Succeed())

		Expect(run("-c", cfgPath, "-i", input, "-o", output, "-t", "30")).To(Succeed())
		svg, err := os.ReadFile(output)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(svg)).To(HavePrefix(`<svg width="20" height="10"`))
		Expect(string(svg)).To(ContainSubstring(`<circle cx="20" cy="10" r="5" fill="white"/>`))
	})

	It("lets --invert=false override the config file", func() {
		cfgPath := filepath.Join(dir, "dotmatrix.yml")
		Expect(os.WriteFile(cfgPath, []byte("invert: true\n"), 0o644)).To(Succeed())

		Expect(run("-c", cfgPath, "-i", input, "-o", output)).To(Succeed())
		svg, err := os.ReadFile(output)
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(string(svg), "<circle")).To(Equal(2))

		Expect(run("-c", cfgPath, "-i", input, "-o", output, "--invert=false")).To(Succeed())
		svg, err = os.ReadFile(output)
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(string(svg), "<circle")).To(Equal(1))
	})

	It("applies the sigmoid flags", func() {
		Expect(run("-i", input, "-o", output, "--sigmoid-factor", "10", "--sigmoid-midpoint", "0.01")).To(Succeed())
		svg, err := os.ReadFile(output)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(svg)).To(HavePrefix(`<svg width="8" height="4"`))
	})

	It("prints braille only when asked", func() {
		Expect(run("-i", input, "-o", output, "--print=false")).To(Succeed())
		Expect(stdout.String()).To(Equal(successMessage + "\n"))
		stdout.Reset()
		Expect(run("-i", input, "-o", output, "--print")).To(Succeed())
		Expect(stdout.String()).To(Equal("⠈\n" + successMessage + "\n"))
	})

	It("writes a preview and prints braille", func() {
		preview := filepath.Join(dir, "preview.png")
		Expect(run("-i", input, "-o", output, "--preview", preview, "-p")).To(Succeed())
		Expect(preview).To(BeAnExistingFile())
		Expect(stdout.String()).To(Equal("⠈\n" + successMessage + "\n"))
	})

	It("logs a summary when verbose", func() {
		Expect(run("-i", input, "-o", output, "--verbose")).To(Succeed())
		Expect(stderr.String()).To(ContainSubstring("rendered 1 of 2 pixels as dots on a 8x4 canvas"))
	})

	Describe("failures", func() {
		It("requires an input", func() {
			Expect(run("-o", output)).To(MatchError(ContainSubstring("--input")))
			Expect(output).NotTo(BeAnExistingFile())
		})

		It("requires an output", func() {
			Expect(run("-i", input)).To(MatchError(ContainSubstring("--output")))
		})

		It("rejects a radius that is not an integer", func() {
			Expect(run("-i", input, "-o", output, "-r", "two")).NotTo(Succeed())
			Expect(output).NotTo(BeAnExistingFile())
		})

		It("rejects a threshold that is not an integer", func() {
			Expect(run("-i", input, "-o", output, "-t", "4.5")).NotTo(Succeed())
			Expect(output).NotTo(BeAnExistingFile())
		})

		It("rejects a radius that is not positive", func() {
			Expect(run("-i", input, "-o", output, "-r", "0")).NotTo(Succeed())
			Expect(output).NotTo(BeAnExistingFile())
		})

		It("fails on a missing input without touching the output", func() {
			Expect(os.WriteFile(output, []byte("keep"), 0o644)).To(Succeed())
			Expect(run("-i", filepath.Join(dir, "missing.png"), "-o", output)).NotTo(Succeed())
			Expect(os.ReadFile(output)).To(Equal([]byte("keep")))
		})

		It("fails on grayscale input", func() {
			path := filepath.Join(dir, "gray.png")
			writeImage(path, image.NewGray(image.Rect(0, 0, 1, 1)))
			Expect(run("-i", path, "-o", output)).To(MatchError(ContainSubstring("unsupported pixel format")))
			Expect(output).NotTo(BeAnExistingFile())
		})

		It("fails when the output directory does not exist", func() {
			Expect(run("-i", input, "-o", filepath.Join(dir, "nope", "out.svg"))).NotTo(Succeed())
			Expect(stdout.String()).NotTo(ContainSubstring(successMessage))
		})
	})
})
