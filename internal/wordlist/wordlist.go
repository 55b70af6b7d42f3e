// Package wordlist provides the fixed 256-entry word alphabet used by the
// mnemonic share encoder (pkg/encode). Each byte value 0-255 maps to exactly
// one word, so encoding and decoding never needs arithmetic across word
// boundaries (unlike a base-2048 BIP-39-style scheme). The mapping is a
// straight substitution cipher over bytes, in the spirit of the PGP/Biometric
// word list that verbalizes fingerprints one octet at a time.
//
// This is not the canonical BIP-39 English word list: that list encodes
// 11-bit groups of a fixed-size entropy blob with an appended checksum, which
// does not fit an arbitrary-length share payload without reintroducing
// padding ambiguity. A flat byte-to-word table sidesteps that problem
// entirely at the cost of one word per byte instead of one word per 11 bits.
package wordlist

// Words is the ordered 256-word alphabet; Words[b] is the word for byte b.
var Words = [256]string{
	"amberanchor", "amberbadger", "ambercedar", "amberdelta", "amberember", "amberfalcon", "amberglacier", "amberharbor",
	"amberivy", "amberjasper", "amberkettle", "amberlantern", "ambermeadow", "ambernimbus", "amberoasis", "amberpebble",
	"amberquartz", "amberraven", "ambersummit", "ambertalon", "amberumbra", "amberviolet", "amberwillow", "amberxenon",
	"amberyonder", "amberzephyr", "azureanchor", "azurebadger", "azurecedar", "azuredelta", "azureember", "azurefalcon",
	"azureglacier", "azureharbor", "azureivy", "azurejasper", "azurekettle", "azurelantern", "azuremeadow", "azurenimbus",
	"azureoasis", "azurepebble", "azurequartz", "azureraven", "azuresummit", "azuretalon", "azureumbra", "azureviolet",
	"azurewillow", "azurexenon", "azureyonder", "azurezephyr", "boldanchor", "boldbadger", "boldcedar", "bolddelta",
	"boldember", "boldfalcon", "boldglacier", "boldharbor", "boldivy", "boldjasper", "boldkettle", "boldlantern",
	"boldmeadow", "boldnimbus", "boldoasis", "boldpebble", "boldquartz", "boldraven", "boldsummit", "boldtalon",
	"boldumbra", "boldviolet", "boldwillow", "boldxenon", "boldyonder", "boldzephyr", "braveanchor", "bravebadger",
	"bravecedar", "bravedelta", "braveember", "bravefalcon", "braveglacier", "braveharbor", "braveivy", "bravejasper",
	"bravekettle", "bravelantern", "bravemeadow", "bravenimbus", "braveoasis", "bravepebble", "bravequartz", "braveraven",
	"bravesummit", "bravetalon", "braveumbra", "braveviolet", "bravewillow", "bravexenon", "braveyonder", "bravezephyr",
	"calmanchor", "calmbadger", "calmcedar", "calmdelta", "calmember", "calmfalcon", "calmglacier", "calmharbor",
	"calmivy", "calmjasper", "calmkettle", "calmlantern", "calmmeadow", "calmnimbus", "calmoasis", "calmpebble",
	"calmquartz", "calmraven", "calmsummit", "calmtalon", "calmumbra", "calmviolet", "calmwillow", "calmxenon",
	"calmyonder", "calmzephyr", "coralanchor", "coralbadger", "coralcedar", "coraldelta", "coralember", "coralfalcon",
	"coralglacier", "coralharbor", "coralivy", "coraljasper", "coralkettle", "corallantern", "coralmeadow", "coralnimbus",
	"coraloasis", "coralpebble", "coralquartz", "coralraven", "coralsummit", "coraltalon", "coralumbra", "coralviolet",
	"coralwillow", "coralxenon", "coralyonder", "coralzephyr", "dustyanchor", "dustybadger", "dustycedar", "dustydelta",
	"dustyember", "dustyfalcon", "dustyglacier", "dustyharbor", "dustyivy", "dustyjasper", "dustykettle", "dustylantern",
	"dustymeadow", "dustynimbus", "dustyoasis", "dustypebble", "dustyquartz", "dustyraven", "dustysummit", "dustytalon",
	"dustyumbra", "dustyviolet", "dustywillow", "dustyxenon", "dustyyonder", "dustyzephyr", "eageranchor", "eagerbadger",
	"eagercedar", "eagerdelta", "eagerember", "eagerfalcon", "eagerglacier", "eagerharbor", "eagerivy", "eagerjasper",
	"eagerkettle", "eagerlantern", "eagermeadow", "eagernimbus", "eageroasis", "eagerpebble", "eagerquartz", "eagerraven",
	"eagersummit", "eagertalon", "eagerumbra", "eagerviolet", "eagerwillow", "eagerxenon", "eageryonder", "eagerzephyr",
	"fadedanchor", "fadedbadger", "fadedcedar", "fadeddelta", "fadedember", "fadedfalcon", "fadedglacier", "fadedharbor",
	"fadedivy", "fadedjasper", "fadedkettle", "fadedlantern", "fadedmeadow", "fadednimbus", "fadedoasis", "fadedpebble",
	"fadedquartz", "fadedraven", "fadedsummit", "fadedtalon", "fadedumbra", "fadedviolet", "fadedwillow", "fadedxenon",
	"fadedyonder", "fadedzephyr", "gentleanchor", "gentlebadger", "gentlecedar", "gentledelta", "gentleember", "gentlefalcon",
	"gentleglacier", "gentleharbor", "gentleivy", "gentlejasper", "gentlekettle", "gentlelantern", "gentlemeadow", "gentlenimbus",
	"gentleoasis", "gentlepebble", "gentlequartz", "gentleraven", "gentlesummit", "gentletalon", "gentleumbra", "gentleviolet",
}

// Index is the reverse lookup from word to byte value, built once at
// package init the same way the teacher's bip39 package builds its own
// reverseWordlist.
var Index map[string]byte

func init() {
	Index = make(map[string]byte, len(Words))
	for i, w := range Words {
		Index[w] = byte(i)
	}
	if len(Index) != len(Words) {
		panic("wordlist: duplicate word detected in alphabet")
	}
}
