package preferences

import (
	"fmt"
	"strings"
)

// CommandResult tells the caller what an applied command asks for beyond the
// preference change itself.
type CommandResult struct {
	// Changed is set when preferences were modified and should be saved.
	Changed bool
	// Reset asks for the substitution session to be reset.
	Reset bool
	// ToggleUI is set for an empty command.
	ToggleUI bool
}

// Apply runs a chat command of the form
//
//	enable|disable|toggle [self|self full|self first|self last|party|others|exclude friends]
//	reset
//
// An operation without a target switches substitution as a whole.
func (p *Preferences) Apply(command string) (CommandResult, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return CommandResult{ToggleUI: true}, nil
	}

	operation, target, _ := strings.Cut(command, " ")
	var set func(*bool)
	switch operation {
	case "enable":
		set = func(b *bool) { *b = true }
	case "disable":
		set = func(b *bool) { *b = false }
	case "toggle":
		set = func(b *bool) { *b = !*b }
	case "reset":
		return CommandResult{Reset: true}, nil
	default:
		return CommandResult{}, fmt.Errorf("invalid operation %q, was expecting enable, disable, toggle, or reset", operation)
	}

	var fields []*bool
	switch target {
	case "":
		fields = []*bool{&p.Enabled}
	case "self":
		fields = []*bool{&p.SelfFull, &p.SelfFirst, &p.SelfLast}
	case "self full":
		fields = []*bool{&p.SelfFull}
	case "self first":
		fields = []*bool{&p.SelfFirst}
	case "self last":
		fields = []*bool{&p.SelfLast}
	case "party":
		fields = []*bool{&p.Party}
	case "others":
		fields = []*bool{&p.Others}
	case "exclude friends":
		fields = []*bool{&p.ExcludeFriends}
	default:
		return CommandResult{}, fmt.Errorf("invalid option %q", target)
	}

	for _, field := range fields {
		set(field)
	}
	return CommandResult{Changed: true}, nil
}
