// Command bptreedemo exercises the bplustree package the way the
// virtual-filesystem collaborator described in spec.md §6 would: one tree
// mapping canonical path strings to descriptors, with directory listings
// computed from a Range scan rather than any dedicated filesystem code.
package main

import (
	"fmt"
	"strings"

	"bptreekv/bplustree"
)

type fsEntry struct {
	kind string // "dir" or "file"
}

func main() {
	tr := bplustree.New[string, fsEntry](4)

	tr.Insert("/", fsEntry{kind: "dir"})
	tr.Insert("/bin", fsEntry{kind: "dir"})
	tr.Insert("/bin/ls", fsEntry{kind: "file"})
	tr.Insert("/bin/cat", fsEntry{kind: "file"})
	tr.Insert("/etc", fsEntry{kind: "dir"})
	tr.Insert("/etc/hosts", fsEntry{kind: "file"})
	tr.Insert("/etc/ssh", fsEntry{kind: "dir"})
	tr.Insert("/etc/ssh/sshd_config", fsEntry{kind: "file"})
	tr.Insert("/home", fsEntry{kind: "dir"})
	tr.Insert("/home/user", fsEntry{kind: "dir"})
	tr.Insert("/home/user/.bashrc", fsEntry{kind: "file"})

	fmt.Println("listing /:")
	for _, name := range list(tr, "/") {
		fmt.Println(" ", name)
	}

	fmt.Println("listing /etc:")
	for _, name := range list(tr, "/etc") {
		fmt.Println(" ", name)
	}

	if v, ok := tr.Lookup("/etc/hosts"); ok {
		fmt.Printf("/etc/hosts is a %s\n", v.kind)
	}

	tr.Delete("/etc/ssh/sshd_config")
	tr.Delete("/etc/ssh")
	fmt.Println("after removing /etc/ssh, listing /etc:")
	for _, name := range list(tr, "/etc") {
		fmt.Println(" ", name)
	}
}

// list implements spec.md §6's directory-listing rule directly on top of
// Range: every key strictly greater than dir that begins with dir+"/" and
// contains no further "/" beyond that prefix. For the root dir "/" the
// prefix is "/" itself.
func list(tr *bplustree.Tree[string, fsEntry], dir string) []string {
	prefix := dir
	if prefix != "/" {
		prefix += "/"
	}

	var names []string
	for _, e := range tr.Range(prefix, prefix+"\xff") {
		if e.Key == dir || !strings.HasPrefix(e.Key, prefix) {
			continue
		}
		rest := strings.TrimPrefix(e.Key, prefix)
		if strings.Contains(rest, "/") {
			continue
		}
		names = append(names, e.Key)
	}
	return names
}
