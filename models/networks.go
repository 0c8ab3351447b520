// SPDX-License-Identifier: MIT

package models

import "github.com/katalvlaran/lvbayes/network"

// Chain is A → B → C with binary {0, 1} domains.
//
//	P(A)   = [0.6, 0.4]
//	P(B|A) = [[0.9, 0.3], [0.1, 0.7]]   rows B, columns A
//	P(C|B) = [[0.7, 0.3], [0.3, 0.7]]   rows C, columns B
//
// Observing A=1 gives P(C) = [0.42, 0.58].
func Chain() (*network.BayesNet, error) {
	var b builder
	a := b.variable("A", 0, 1)
	bv := b.variable("B", 0, 1)
	c := b.variable("C", 0, 1)
	b.cpt([]float64{0.6, 0.4}, a)
	b.cpt([]float64{0.9, 0.3, 0.1, 0.7}, bv, a)
	b.cpt([]float64{0.7, 0.3, 0.3, 0.7}, c, bv)

	return b.build("chain")
}

// Sprinkler is the four-node lawn network with boolean domains (true first).
func Sprinkler() (*network.BayesNet, error) {
	var b builder
	cloudy := b.variable("Cloudy", true, false)
	sprinkler := b.variable("Sprinkler", true, false)
	rain := b.variable("Rain", true, false)
	wet := b.variable("WetGrass", true, false)
	b.cpt([]float64{0.5, 0.5}, cloudy)
	b.cpt([]float64{0.1, 0.5, 0.9, 0.5}, sprinkler, cloudy)
	b.cpt([]float64{0.8, 0.2, 0.2, 0.8}, rain, cloudy)
	b.cpt([]float64{0.99, 0.9, 0.9, 0, 0.01, 0.1, 0.1, 1}, wet, sprinkler, rain)

	return b.build("sprinkler")
}

// Alarm is the burglary network: Burglary and Earthquake trigger Alarm, which
// JohnCalls and MaryCalls report. Boolean domains, true first.
//
// P(Burglary=true | JohnCalls=true, MaryCalls=true) ≈ 0.284172.
func Alarm() (*network.BayesNet, error) {
	var b builder
	burglary := b.variable("Burglary", true, false)
	quake := b.variable("Earthquake", true, false)
	alarm := b.variable("Alarm", true, false)
	john := b.variable("JohnCalls", true, false)
	mary := b.variable("MaryCalls", true, false)
	b.cpt([]float64{0.001, 0.999}, burglary)
	b.cpt([]float64{0.002, 0.998}, quake)
	b.cpt([]float64{
		0.95, 0.94, 0.29, 0.001,
		0.05, 0.06, 0.71, 0.999,
	}, alarm, burglary, quake)
	b.cpt([]float64{0.90, 0.05, 0.10, 0.95}, john, alarm)
	b.cpt([]float64{0.70, 0.01, 0.30, 0.99}, mary, alarm)

	return b.build("alarm")
}

// AsiaLite is the chest-clinic network restricted to its diagnostic core:
// Asia → Tuberculosis, Smoking → LungCancer, both → Either (logical or),
// Either → XRay. Domains are the texts "yes", "no".
func AsiaLite() (*network.BayesNet, error) {
	var b builder
	asia := b.variable("Asia", "yes", "no")
	smoking := b.variable("Smoking", "yes", "no")
	tub := b.variable("Tuberculosis", "yes", "no")
	lung := b.variable("LungCancer", "yes", "no")
	either := b.variable("Either", "yes", "no")
	xray := b.variable("XRay", "yes", "no")
	b.cpt([]float64{0.01, 0.99}, asia)
	b.cpt([]float64{0.5, 0.5}, smoking)
	b.cpt([]float64{0.05, 0.01, 0.95, 0.99}, tub, asia)
	b.cpt([]float64{0.1, 0.01, 0.9, 0.99}, lung, smoking)
	b.cpt([]float64{
		1, 1, 1, 0,
		0, 0, 0, 1,
	}, either, tub, lung)
	b.cpt([]float64{0.98, 0.05, 0.02, 0.95}, xray, either)

	return b.build("asia-lite")
}
