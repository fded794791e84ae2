// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"io/ioutil"
	"log"
	"strings"

	"github.com/dbernard/hdlsim"
	"github.com/dbernard/hdlsim/hwlib"
)

func main() {
	file := flag.String("f", "", "HDL file to load; with no file, runs a built-in XOR demo")
	cycles := flag.Int("n", 10, "number of evaluation or clock cycles to run")
	flag.Parse()

	reg := hdlsim.NewRegistry()
	if _, err := hwlib.Xor(reg); err != nil {
		log.Fatal(err)
	}
	if _, err := hwlib.AdderN(reg, 16); err != nil {
		log.Fatal(err)
	}

	var c *hdlsim.Chip
	if *file == "" {
		var err error
		c, err = reg.NewInstance("Xor")
		if err != nil {
			log.Fatal(err)
		}
		runXorDemo(c, *cycles)
		return
	}

	src, err := ioutil.ReadFile(*file)
	if err != nil {
		log.Fatal(err)
	}
	c, err = hdlsim.Parse(string(src), reg)
	if err != nil {
		log.Fatal(err)
	}
	runDemo(c, *cycles)
}

// runXorDemo evaluates the built-in XOR demo chip cycles times, stepping
// through its four input combinations in turn and logging each result.
func runXorDemo(c *hdlsim.Chip, cycles int) {
	for i := 0; i < cycles; i++ {
		a, b := i&1 != 0, i&2 != 0
		if err := c.SetInput("a", []bool{a}); err != nil {
			log.Fatal(err)
		}
		if err := c.SetInput("b", []bool{b}); err != nil {
			log.Fatal(err)
		}
		if _, err := c.Evaluate(); err != nil {
			log.Fatal(err)
		}
		out, _ := c.GetOutput("out")
		log.Printf("xor(a=%v, b=%v) = %v", a, b, out[0])
	}
}

// runDemo drives a chip loaded from HDL source: Evaluate once for an
// unclocked chip, or cycles Tick/Tock pairs for a clocked one, leaving
// every input at its zero value and logging the resulting outputs.
func runDemo(c *hdlsim.Chip, cycles int) {
	if !c.Clocked {
		if _, err := c.Evaluate(); err != nil {
			log.Fatal(err)
		}
		log.Printf("%s: %s", c.Name, outputsString(c))
		return
	}
	for i := 0; i < cycles; i++ {
		if err := c.Tick(); err != nil {
			log.Fatal(err)
		}
		if _, err := c.Tock(); err != nil {
			log.Fatal(err)
		}
		log.Printf("%s cycle %d: %s", c.Name, i, outputsString(c))
	}
}

func outputsString(c *hdlsim.Chip) string {
	var b strings.Builder
	for _, name := range c.Output.Names() {
		vals, _ := c.GetOutput(name)
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteByte('=')
		for _, v := range vals {
			if v {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}
