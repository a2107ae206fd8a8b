// SPDX-License-Identifier: MIT

// keymatrixctl exercises a 3x4 keypad matrix driven by an MCP23S17,
// running numbered demonstration sequences or an interactive entry loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/platinasystems/liner"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/warpnine/go-keymatrix"
	"github.com/warpnine/go-keymatrix/mcp23s17"
)

var (
	spiAddr     = flag.String("spi", "/dev/spidev0.0", "SPI port of the expander")
	chipSelect  = flag.Int("cs", 0, "chip-select address bit (0 or 1)")
	speedKHz    = flag.Int("speed", 100, "SPI clock in kHz (100-10000)")
	hold        = flag.Duration("hold", 100*time.Millisecond, "press hold duration")
	interval    = flag.Duration("interval", 200*time.Millisecond, "pause between presses")
	resetChip   = flag.String("reset-chip", "", "gpiochip of the RESET line, e.g. gpiochip0")
	resetOffset = flag.Int("reset-offset", 0, "offset of the RESET line")
)

const layout = `
3x4 Keypad Layout:
  1   2   3   CALL    Row 0
  4   5   6   0       Row 1
  7   8   9   CLR     Row 2
`

func main() {
	flag.Parse()

	example := 0
	if flag.NArg() > 0 {
		n, err := strconv.Atoi(flag.Arg(0))
		if err != nil {
			log.Fatalf("invalid example number %q", flag.Arg(0))
		}
		example = n
	}
	if example == 0 {
		menu()
		return
	}
	if err := run(example); err != nil {
		log.Fatal(err)
	}
}

func menu() {
	fmt.Println("keymatrixctl - keypad matrix examples")
	fmt.Print(layout)
	fmt.Println("Available examples:")
	fmt.Println("  1 - press individual buttons")
	fmt.Println("  2 - dial a phone number (123-456-7890)")
	fmt.Println("  3 - scan all buttons in grid order")
	fmt.Println("  4 - enter a pattern, submit, then clear")
	fmt.Println("  5 - interactive number entry (0-999) + CALL")
	fmt.Println()
	fmt.Printf("Usage: %s [flags] <example>\n", os.Args[0])
}

func run(example int) error {
	if *resetChip != "" {
		if err := mcp23s17.HardwareReset(*resetChip, *resetOffset); err != nil {
			return err
		}
	}
	if _, err := host.Init(); err != nil {
		return err
	}
	exp, err := mcp23s17.Open(*spiAddr,
		mcp23s17.WithChipSelect(*chipSelect),
		mcp23s17.WithSpeed(physic.Frequency(*speedKHz)*physic.KiloHertz),
	)
	if err != nil {
		return err
	}
	defer exp.Close()

	m, err := keymatrix.New(exp, 3, 4)
	if err != nil {
		return err
	}
	kp, err := keymatrix.NewKeypad(m, keymatrix.Layout3x4())
	if err != nil {
		return err
	}

	switch example {
	case 1:
		return singleButtons(kp)
	case 2:
		return dialNumber(kp)
	case 3:
		return gridScan(kp)
	case 4:
		return patternAndClear(kp)
	case 5:
		return interactive(kp)
	}
	return fmt.Errorf("unknown example %d", example)
}

func singleButtons(kp *keymatrix.Keypad) error {
	for _, name := range []string{"1", "5", "9", "CALL", "0", "CLR"} {
		log.Printf("pressing %s", name)
		if err := kp.Press(name, *hold); err != nil {
			return err
		}
		time.Sleep(*interval)
	}
	return nil
}

func dialNumber(kp *keymatrix.Keypad) error {
	number := "1234567890"
	log.Printf("dialing %s", number)
	return kp.PressDigits(number, *hold, *interval)
}

func gridScan(kp *keymatrix.Keypad) error {
	byPosition := make(map[keymatrix.Position]string)
	for name, p := range keymatrix.Layout3x4() {
		byPosition[p] = name
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			name := byPosition[keymatrix.Position{Row: row, Col: col}]
			log.Printf("pressing [%d][%d] -> %s", row, col, name)
			if err := kp.Press(name, *hold); err != nil {
				return err
			}
			time.Sleep(*interval)
		}
	}
	return nil
}

func patternAndClear(kp *keymatrix.Keypad) error {
	log.Print("entering pattern 12345")
	if err := kp.PressDigits("12345", *hold, *interval); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)
	log.Print("submitting with CALL")
	if err := kp.Press("CALL", *hold); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)
	log.Print("clearing with CLR")
	return kp.Press("CLR", *hold)
}

// interactive prompts for numbers and sends each as three digits followed
// by CALL, until EOF or "q".
func interactive(kp *keymatrix.Keypad) error {
	fmt.Print(layout)
	prompt, closePrompt := promptFunc()
	defer closePrompt()
	for {
		input, err := prompt("number (0-999, q to quit): ")
		if err != nil {
			fmt.Println()
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "q") {
			return nil
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 0 || n > 999 {
			fmt.Printf("invalid number %q\n", input)
			continue
		}
		digits := fmt.Sprintf("%03d", n)
		log.Printf("sending %s + CALL", digits)
		if err := kp.PressDigits(digits, *hold, *interval); err != nil {
			return err
		}
		if err := kp.Press("CALL", *hold); err != nil {
			return err
		}
	}
}

// promptFunc returns a line prompter and its cleanup, using liner on a
// terminal and plain scanning otherwise.
func promptFunc() (func(string) (string, error), func()) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		scanner := bufio.NewScanner(os.Stdin)
		return func(p string) (string, error) {
			fmt.Print(p)
			if !scanner.Scan() {
				return "", fmt.Errorf("stdin closed")
			}
			return scanner.Text(), nil
		}, func() {}
	}
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return func(p string) (string, error) {
		return line.Prompt(p)
	}, func() { line.Close() }
}
