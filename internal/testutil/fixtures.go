package testutil

// SampleHello prints "hello" and halts: five prints along the top row,
// each reading the letter beneath it.
const SampleHello = "pppppq\nhello"

// SampleQuit halts immediately without touching stack or output.
const SampleQuit = "q"

// SampleBroken walks straight into an unrecognized instruction.
const SampleBroken = "l!"
