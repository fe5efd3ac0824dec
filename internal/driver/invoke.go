package driver

import (
	"bytes"
	"fmt"
	"os/exec"
)

// defaultCCFlags is the literal flag set the emitted translation unit is
// compiled with: no libc, no stack protector, read C source from stdin.
var defaultCCFlags = []string{"-g", "-w", "-fno-stack-protector", "-nostdlib", "-c", "-xc", "-"}

// invokeCompiler pipes src to the external C compiler's stdin and waits for
// it to produce objectPath. Writing happens on a separate goroutine so a
// source buffer larger than the pipe's kernel buffer can't deadlock against
// the compiler simultaneously trying to flush stdout/stderr — the standard
// os/exec.Cmd.StdinPipe pattern, not needed anywhere else in this pipeline
// since the rest of it is single-threaded.
func invokeCompiler(src []byte, objectPath string, opts Options) error {
	cc := opts.CC
	if cc == "" {
		cc = "gcc"
	}

	args := append([]string{}, defaultCCFlags...)
	args = insertOutputFlag(args, objectPath)
	if len(opts.CCFlags) > 0 {
		args = append(opts.CCFlags, args...)
	}

	cmd := exec.Command(cc, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("cannot open pipe to %s: %w", cc, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cannot start %s: %w", cc, err)
	}

	go func() {
		defer stdin.Close()
		stdin.Write(src)
	}()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%s failed: %w\n%s", cc, err, stderr.String())
	}
	return nil
}

// insertOutputFlag splices `-o objectPath` in ahead of the trailing `-xc -`
// pair, keeping the flag order a literal command line would use.
func insertOutputFlag(flags []string, objectPath string) []string {
	out := make([]string, 0, len(flags)+2)
	out = append(out, flags[:len(flags)-2]...)
	out = append(out, "-o", objectPath)
	out = append(out, flags[len(flags)-2:]...)
	return out
}
