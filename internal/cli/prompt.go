package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Prompter encapsula la lectura validada de datos desde la terminal.
// Cada método reintenta indefinidamente hasta obtener un valor válido,
// imprimiendo una línea [Error] en cada intento fallido; la única excepción
// es Optional, que acepta vacío como señal de "conservar valor".
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

var errLine = color.New(color.FgRed)

// NewPrompter crea un Prompter sobre el par entrada/salida dado.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine lee una línea y recorta el salto de línea final.
// El segundo retorno es false si la entrada se agotó (EOF).
func (p *Prompter) readLine() (string, bool) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// truncate acota el texto a max runas.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

// IntInRange solicita y valida un entero en [min..max].
// Con la entrada agotada retorna min, que en los menús es la opción de salida.
func (p *Prompter) IntInRange(prompt string, min, max int) int {
	for {
		fmt.Fprint(p.out, prompt)
		line, ok := p.readLine()
		if !ok {
			return min
		}
		if line == "" {
			continue
		}
		value, err := strconv.Atoi(line)
		if err == nil && value >= min && value <= max {
			return value
		}
		errLine.Fprintf(p.out, "[Error] Ingrese un entero en rango [%d..%d].\n", min, max)
	}
}

// FloatMin solicita y valida un decimal >= min.
func (p *Prompter) FloatMin(prompt string, min float64) float64 {
	for {
		fmt.Fprint(p.out, prompt)
		line, ok := p.readLine()
		if !ok {
			return min
		}
		if line == "" {
			continue
		}
		value, err := strconv.ParseFloat(line, 64)
		if err == nil && value >= min {
			return value
		}
		errLine.Fprintf(p.out, "[Error] Ingrese un numero valido (>= %.2f).\n", min)
	}
}

// NonEmpty solicita un texto y obliga a que no esté vacío.
// El texto se acota a maxLen runas.
func (p *Prompter) NonEmpty(prompt string, maxLen int) string {
	for {
		fmt.Fprint(p.out, prompt)
		line, ok := p.readLine()
		if !ok {
			return ""
		}
		if line != "" {
			return truncate(line, maxLen)
		}
		errLine.Fprintln(p.out, "[Error] No puede estar vacio.")
	}
}

// Optional solicita un texto que puede quedar vacío (Enter para conservar).
// Un solo intento, sin reintentos: vacío es un resultado válido.
func (p *Prompter) Optional(prompt string, maxLen int) (string, bool) {
	fmt.Fprint(p.out, prompt)
	line, ok := p.readLine()
	if !ok || line == "" {
		return "", true
	}
	return truncate(line, maxLen), false
}
