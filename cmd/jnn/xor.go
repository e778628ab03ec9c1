package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/JayPi4c/JavaNeuralNetwork/activation"
	"github.com/JayPi4c/JavaNeuralNetwork/nn"
)

var (
	xorInputs  = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	xorTargets = [][]float64{{0}, {1}, {1}, {0}}
)

func runXOR(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("xor", stderr)
	lr := fs.Float64("lr", 0.5, "learning rate")
	hidden := fs.String("hidden", "4", "comma-separated hidden layer widths")
	epochs := fs.Int("epochs", 20000, "training samples to present")
	seed := fs.Uint64("seed", 1, "seed for initial parameters and sample order")
	act := fs.String("activation", activation.NameSigmoid, "activation function name")
	out := fs.String("out", "", "save the trained network to this path")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	logger := newLogger(stderr, *verbose)

	widths, err := parseWidths(*hidden)
	if err != nil {
		return err
	}
	f, err := activation.Lookup(*act)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	net, err := nn.NewFromConfig(nn.Config{
		LearningRate: *lr,
		InputWidth:   2,
		OutputWidth:  1,
		HiddenWidths: widths,
		Activation:   f,
		Rand:         rng,
	})
	if err != nil {
		return err
	}
	logger.Info("network created", "layers", net.Layers(), "learning_rate", *lr, "activation", f.Name())

	report := max(*epochs/10, 1)
	for epoch := range *epochs {
		i := rng.IntN(len(xorInputs))
		if err := net.TrainVector(xorInputs[i], xorTargets[i]); err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if (epoch+1)%report == 0 {
			mse, err := net.MeanSquaredError(xorInputs, xorTargets)
			if err != nil {
				return err
			}
			logger.Debug("training", "epoch", epoch+1, "mse", mse)
		}
	}

	mse, err := net.MeanSquaredError(xorInputs, xorTargets)
	if err != nil {
		return err
	}
	logger.Info("training finished", "epochs", *epochs, "mse", mse)

	if err := printTable(stdout, net); err != nil {
		return err
	}

	if err := checkRoundTrip(net); err != nil {
		return err
	}
	logger.Debug("serialization round trip verified")

	if *out != "" {
		if err := net.Save(*out); err != nil {
			return err
		}
		logger.Info("network saved", "path", *out)
	}
	return nil
}

func printTable(w io.Writer, net *nn.Network) error {
	outputs, err := net.QueryAll(xorInputs)
	if err != nil {
		return err
	}
	for i, in := range xorInputs {
		fmt.Fprintf(w, "%g XOR %g = %.4f (want %g)\n", in[0], in[1], outputs[i].At(0, 0), xorTargets[i][0])
	}
	return nil
}

// checkRoundTrip serializes net and verifies the restored copy answers
// every XOR input identically.
func checkRoundTrip(net *nn.Network) error {
	var buf bytes.Buffer
	if err := net.Serialize(&buf); err != nil {
		return err
	}
	restored, err := nn.Deserialize(&buf)
	if err != nil {
		return err
	}
	want, err := net.QueryAll(xorInputs)
	if err != nil {
		return err
	}
	got, err := restored.QueryAll(xorInputs)
	if err != nil {
		return err
	}
	for i := range want {
		if !want[i].Equal(got[i]) {
			return fmt.Errorf("restored network disagrees on input %v", xorInputs[i])
		}
	}
	return nil
}

func parseWidths(s string) ([]int, error) {
	var widths []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("hidden width %q: %w", part, err)
		}
		widths = append(widths, w)
	}
	return widths, nil
}
