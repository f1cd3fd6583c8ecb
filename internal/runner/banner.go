package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = (`
                                             _
  __ _ _ __   __ _  ___ _ __ __ _  ___ ___  | | __
 / _` + "`" + ` | '_ \ / _` + "`" + ` |/ __| '__/ _` + "`" + ` |/ __/ __| | |/ /
| (_| | | | | (_| | (__| | | (_| | (__\__ \ |   <
 \__,_|_| |_|\__,_|\___|_|  \__,_|\___|___/ |_|\_\
`)

var version = "v0.1.0"

// showBanner prints the startup banner unless silenced.
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tconcurrent anagram password recovery\n\n")
}
