// ABOUTME: Entry point for the coldcall CLI, TUI, and MCP server
// ABOUTME: Routes subcommands and wires the database, identity, and dialer together
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/harperreed/coldcall/charm"
	"github.com/harperreed/coldcall/cli"
	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/tui"
	"github.com/harperreed/coldcall/web"
)

const version = "0.1.0"

func main() {
	// Optional .env for GOOGLE_CLIENT_ID etc.; absence is fine.
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/coldcall/coldcall.db)")
	initOnly := flag.Bool("init", false, "Initialize database and exit")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("coldcall version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	openDB := func() *sql.DB {
		path := *dbPath
		if path == "" {
			path = db.DefaultPath()
		}
		database, err := db.OpenDatabase(path)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		return database
	}

	identity, err := charm.NewIdentity()
	if err != nil {
		log.Fatalf("Failed to set up identity: %v", err)
	}

	switch command {
	case "mcp":
		database := openDB()
		defer database.Close()

		if err := cli.MCPCommand(database, identity); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "tui":
		database := openDB()
		defer database.Close()

		if err := tui.Run(database, identity); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	case "web":
		database := openDB()
		defer database.Close()

		server, err := web.NewServer(database)
		if err != nil {
			log.Fatalf("Failed to create web server: %v", err)
		}
		if err := server.Start(8090); err != nil {
			log.Fatalf("Web server failed: %v", err)
		}

	case "import":
		database := openDB()
		defer database.Close()

		if err := cli.ImportCommand(database, identity, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "profiles":
		database := openDB()
		defer database.Close()

		if *initOnly {
			log.Println("Database initialized successfully")
			os.Exit(0)
		}

		if len(commandArgs) == 0 {
			fmt.Println("Error: profiles requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		sub := commandArgs[0]
		subArgs := commandArgs[1:]

		switch sub {
		case "import":
			if err := cli.ImportCommand(database, identity, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list":
			if err := cli.ListProfilesCommand(database, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "rename":
			if err := cli.RenameProfileCommand(database, identity, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete":
			if err := cli.DeleteProfileCommand(database, identity, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "use":
			if err := cli.UseProfileCommand(database, identity, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "contacts":
			if err := cli.ContactsCommand(database, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown profiles command: %s\n\n", sub)
			printUsage()
			os.Exit(1)
		}

	case "calls":
		database := openDB()
		defer database.Close()

		if len(commandArgs) == 0 {
			fmt.Println("Error: calls requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		sub := commandArgs[0]
		subArgs := commandArgs[1:]

		switch sub {
		case "queue":
			if err := cli.QueueCommand(database, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "next":
			if err := cli.NextCommand(database, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "prev":
			if err := cli.PrevCommand(database, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "dial":
			if err := cli.DialCommand(database, identity, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "log":
			if err := cli.LogCommand(database, identity, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "cancel":
			if err := cli.CancelCommand(database, identity, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "statuses":
			if err := cli.StatusesCommand(subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown calls command: %s\n\n", sub)
			printUsage()
			os.Exit(1)
		}

	case "history":
		database := openDB()
		defer database.Close()

		if err := cli.HistoryCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "summary":
		database := openDB()
		defer database.Close()

		if err := cli.SummaryCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "viz":
		database := openDB()
		defer database.Close()

		if len(commandArgs) == 0 {
			fmt.Println("Error: viz requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		switch commandArgs[0] {
		case "dashboard":
			if err := cli.DashboardCommand(database, commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "graph":
			if err := cli.OutcomeGraphCommand(database, commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown viz command: %s\n\n", commandArgs[0])
			printUsage()
			os.Exit(1)
		}

	case "google":
		if len(commandArgs) == 0 {
			fmt.Println("Error: google requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		switch commandArgs[0] {
		case "init":
			if err := cli.GoogleInitCommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "import":
			database := openDB()
			defer database.Close()

			if err := cli.GoogleImportCommand(database, identity, commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown google command: %s\n\n", commandArgs[0])
			printUsage()
			os.Exit(1)
		}

	case "account":
		if len(commandArgs) == 0 {
			fmt.Println("Error: account requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		switch commandArgs[0] {
		case "status":
			if err := charm.AccountStatusCommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "host":
			if err := charm.AccountHostCommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown account command: %s\n\n", commandArgs[0])
			printUsage()
			os.Exit(1)
		}

	case "settings":
		database := openDB()
		defer database.Close()

		if err := cli.SettingsCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`coldcall v%s - Cold calling workflow manager

USAGE:
  coldcall [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Database path (default: ~/.local/share/coldcall/coldcall.db)
  --init                 Initialize database and exit (use with 'profiles')

COMMANDS:
  tui                    Interactive full-screen interface
  mcp                    Start MCP server (stdio)
  web                    Read-only web dashboard at localhost:8090
  import <file.vcf>      Shorthand for 'profiles import'

PROFILES:
  coldcall profiles import [--name <name>] <file.vcf>
  coldcall profiles list
  coldcall profiles rename --name <new-name> <profile>
  coldcall profiles delete <profile>
  coldcall profiles use <profile>
  coldcall profiles contacts [profile]

CALLS:
  coldcall calls queue        Show who to call next
  coldcall calls next         Move to the next To Call contact
  coldcall calls prev         Move to the previous To Call contact
  coldcall calls dial [id]    Dial the current (or named) contact
  coldcall calls log --status <status> [--notes <text>] [id]
  coldcall calls cancel       Abandon the pending call
  coldcall calls statuses     Show the outcome vocabulary

HISTORY:
  coldcall history [--filter <status|Missed Calls|All>] [--all] [profile]
  coldcall summary [--all] [profile]

VIZ:
  coldcall viz dashboard
  coldcall viz graph [--output <file>] [profile]

GOOGLE:
  coldcall google init        Authenticate with Google
  coldcall google import --name <profile>

ACCOUNT:
  coldcall account status
  coldcall account host <hostname>

SETTINGS:
  coldcall settings [--theme light|dark] [--language en|ja]

EXAMPLES:
  # Import a calling list and start working through it
  coldcall import routes/downtown.vcf
  coldcall profiles use downtown
  coldcall tui

  # Log a call from the command line
  coldcall calls dial
  coldcall calls log --status "Ordered" --notes "two crates, deliver Friday"

  # Check the numbers
  coldcall summary --all

`, version)
}
