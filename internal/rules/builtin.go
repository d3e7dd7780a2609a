package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fnzv/security-hook/internal/decision"
)

// builtinRule pairs a name with a predicate over raw command text. Unlike
// the configurable deny list, these are baked in and always active: they
// catch classes of command that are dangerous regardless of any policy
// file, the same way a seatbelt isn't something a driver configures.
type builtinRule struct {
	name   string
	check  func(cmd string) bool
	reason string
}

var builtinRules = buildBuiltinRules()

// CheckBuiltinSafeguards scans raw command text against a fixed catalog of
// destructive-command, container-escape, privilege-escalation,
// reverse-shell, exfiltration, and kernel-tampering patterns. It runs
// independent of any configured deny/custom/paranoid rule and cannot be
// disabled from policy — a defense-in-depth floor under the configurable
// layers above it.
func CheckBuiltinSafeguards(command string) decision.Verdict {
	normalized := strings.TrimSpace(command)
	unquoted := strings.NewReplacer(`"`, ``, `'`, ``, "`", "").Replace(normalized)
	lower := strings.ToLower(normalized)
	lowerUnquoted := strings.ToLower(unquoted)

	for _, rule := range builtinRules {
		if rule.check(normalized) || rule.check(unquoted) || rule.check(lower) || rule.check(lowerUnquoted) {
			return decision.NewBlock("builtin."+rule.name, fmt.Sprintf("%s (matched built-in safeguard '%s')", rule.reason, rule.name))
		}
	}
	return decision.NewAllow()
}

func buildBuiltinRules() []builtinRule {
	var rules []builtinRule
	addRegex := func(name, pattern, reason string) {
		re := regexp.MustCompile(pattern)
		rules = append(rules, builtinRule{name: name, check: re.MatchString, reason: reason})
	}
	addContains := func(name, substr, reason string) {
		rules = append(rules, builtinRule{name: name, check: func(cmd string) bool { return strings.Contains(cmd, substr) }, reason: reason})
	}

	// Destructive filesystem commands.
	addRegex("rm-rf-root",
		`rm\s+(-[-a-zA-Z]+=?\S*\s+)*/(\s|$|\*|;|&|\|)`,
		"removal of root filesystem")
	addRegex("rm-critical-dirs",
		`rm\s+(-[-a-zA-Z]+=?\S*\s+)*(/etc|/usr|/bin|/sbin|/lib|/boot|/var|/proc|/sys|/dev)(\s|$|/|;|&|\|)`,
		"removal of critical system directories")
	addRegex("mkfs",
		`mkfs(\.[a-z0-9]+)?\s+/dev/`,
		"formatting a block device")
	addRegex("dd-destructive",
		`dd\s+.*of=/dev/(sd|hd|vd|nvme|xvd|loop)[a-z0-9]*`,
		"writing directly to a block device")
	addRegex("fork-bomb",
		`:\(\)\s*\{.*:\|:.*\}\s*;?\s*:`,
		"fork bomb")

	// Container escape attempts.
	addRegex("nsenter",
		`nsenter\s`,
		"nsenter can be used to escape container namespaces")
	addContains("docker-socket",
		"/var/run/docker.sock",
		"accessing the Docker socket allows container escape")
	addRegex("mount-proc-sys",
		`mount\s+.*(-t\s+(proc|sysfs|devtmpfs|cgroup)|/proc|/sys|/dev)`,
		"mounting sensitive kernel filesystems")
	addContains("sysrq",
		"/proc/sysrq-trigger",
		"accessing sysrq-trigger can crash the host")
	addContains("host-proc",
		"/proc/1/root",
		"accessing PID 1's root is a container escape vector")
	addRegex("chroot-escape",
		`chroot\s+/`,
		"chroot can be used to escape a container")
	addRegex("unshare-escape",
		`unshare\s+.*--mount|unshare\s+.*-m`,
		"unshare with a mount namespace can aid container escape")
	addContains("cgroup-escape",
		"/sys/fs/cgroup",
		"manipulating cgroups can be a container escape vector")
	addRegex("capsh-escape",
		`capsh\s`,
		"capsh can manipulate capabilities for privilege escalation")

	// Privilege escalation.
	addRegex("chmod-root",
		`chmod\s+(-[a-zA-Z]+\s+)*[0-7]*7[0-7]*\s+/(etc|usr|bin|sbin|var|boot)`,
		"dangerous permission change on system directories")
	addRegex("passwd-shadow",
		`(>\s*|tee\s+.*)/etc/(passwd|shadow|sudoers)`,
		"modifying authentication/authorization files")

	// Reverse shells.
	addRegex("bash-tcp",
		`bash\s+-i\s+.*(/dev/tcp|/dev/udp)`,
		"bash reverse shell via /dev/tcp")
	addRegex("reverse-shell-nc",
		`(nc|ncat|netcat)\s+.*-e\s+/(bin|usr)`,
		"netcat reverse shell")
	addRegex("reverse-shell-socat",
		`socat\s+.*exec:`,
		"socat reverse shell")
	addRegex("reverse-shell-python",
		`python[23]?\s+-c\s+.*socket.*connect`,
		"python reverse shell")
	addRegex("reverse-shell-perl",
		`perl\s+-e\s+.*socket.*connect`,
		"perl reverse shell")

	// Sensitive data exfiltration.
	addRegex("exfil-env-secrets",
		`(curl|wget|nc|ncat)\s+.*\$\{?(AWS_SECRET|DATABASE_URL|API_KEY|ANTHROPIC_API_KEY|GITHUB_TOKEN|OPENAI_API_KEY)`,
		"exfiltrating secret environment variables")
	addRegex("exfil-credentials",
		`(curl|wget)\s+.*-d\s+.*\$\(cat\s+/etc/(passwd|shadow)\)`,
		"exfiltrating credential files")

	// Kernel / system manipulation.
	addRegex("sysctl-write",
		`sysctl\s+-w\s`,
		"modifying kernel parameters")
	addRegex("insmod-modprobe",
		`(insmod|modprobe)\s`,
		"loading kernel modules")
	addRegex("iptables-flush",
		`iptables\s+(-[a-zA-Z]*F|-P\s+.*ACCEPT)`,
		"flushing or weakening firewall rules")

	// Dangerous piping to shell.
	addRegex("curl-pipe-sh",
		`(curl|wget)\s+[^|]*\|\s*(sudo\s+)?(ba)?sh`,
		"piping remote content directly to a shell")

	return rules
}
