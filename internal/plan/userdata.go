package plan

import (
	"fmt"
	"strings"

	"github.com/dc-tec/runner-fleet-provisioner/internal/fleet"
)

// Two user-data strategies exist because the boot mechanisms differ per OS.
// Shell platforms (mac, linux) source a generated preamble of exported
// variables ahead of the template body. Windows boots a structured document
// in which literal placeholder tokens are substituted. Both are genuine
// domain requirements; do not unify them.

// stageLabel is the runtime label runners register under. Only Release
// fleets are labeled "release"; every other stage is a test fleet.
func stageLabel(stage fleet.Stage) string {
	if stage == fleet.StageRelease {
		return "release"
	}
	return "test"
}

// shellUserData renders the shell-script strategy: an exported-variable
// preamble concatenated with the template body.
func shellUserData(stage fleet.Stage, repo, region, body string) string {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	fmt.Fprintf(&b, "export LABEL_STAGE=%s\n", stageLabel(stage))
	fmt.Fprintf(&b, "export REPO=%s\n", repo)
	fmt.Fprintf(&b, "export REGION=%s\n", region)
	b.WriteString("\n")
	b.WriteString(body)
	return b.String()
}

// placeholderUserData renders the structured-document strategy: literal
// <STAGE>, <REPO>, and <REGION> tokens in the template are substituted.
// Region substitutes to the empty string when the environment spec carries
// no region.
func placeholderUserData(stage fleet.Stage, repo, region, body string) string {
	return strings.NewReplacer(
		"<STAGE>", stageLabel(stage),
		"<REPO>", repo,
		"<REGION>", region,
	).Replace(body)
}
