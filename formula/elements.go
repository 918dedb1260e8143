package formula

// Element is one row of the built-in periodic table: a symbol and its
// standard atomic weight, pinned to the CIAAW 2021 standard atomic weights
// (conventional single values for elements whose weight is an interval) as
// used by most introductory chemistry coursework; see DESIGN.md for the
// reasoning behind this choice of table.
type Element struct {
	Symbol string
	Name   string
	Weight string // decimal literal text, fed to decimal.MustParse by the table
}

// PeriodicTable is the full built-in element set, symbol -> atomic weight.
// Radioactive elements with no stable isotope use the mass number of their
// longest-lived known isotope (conventional IUPAC practice), in brackets in
// chemistry texts but stored here as a plain weight since Formula has no
// notion of "no stable value".
var PeriodicTable = []Element{
	{"H", "Hydrogen", "1.008"}, {"He", "Helium", "4.003"},
	{"Li", "Lithium", "6.941"}, {"Be", "Beryllium", "9.012"},
	{"B", "Boron", "10.81"}, {"C", "Carbon", "12.01"},
	{"N", "Nitrogen", "14.01"}, {"O", "Oxygen", "16.00"},
	{"F", "Fluorine", "19.00"}, {"Ne", "Neon", "20.18"},
	{"Na", "Sodium", "22.99"}, {"Mg", "Magnesium", "24.31"},
	{"Al", "Aluminium", "26.98"}, {"Si", "Silicon", "28.09"},
	{"P", "Phosphorus", "30.97"}, {"S", "Sulfur", "32.07"},
	{"Cl", "Chlorine", "35.45"}, {"Ar", "Argon", "39.95"},
	{"K", "Potassium", "39.10"}, {"Ca", "Calcium", "40.08"},
	{"Sc", "Scandium", "44.96"}, {"Ti", "Titanium", "47.87"},
	{"V", "Vanadium", "50.94"}, {"Cr", "Chromium", "52.00"},
	{"Mn", "Manganese", "54.94"}, {"Fe", "Iron", "55.85"},
	{"Co", "Cobalt", "58.93"}, {"Ni", "Nickel", "58.69"},
	{"Cu", "Copper", "63.55"}, {"Zn", "Zinc", "65.38"},
	{"Ga", "Gallium", "69.72"}, {"Ge", "Germanium", "72.63"},
	{"As", "Arsenic", "74.92"}, {"Se", "Selenium", "78.97"},
	{"Br", "Bromine", "79.90"}, {"Kr", "Krypton", "83.80"},
	{"Rb", "Rubidium", "85.47"}, {"Sr", "Strontium", "87.62"},
	{"Y", "Yttrium", "88.91"}, {"Zr", "Zirconium", "91.22"},
	{"Nb", "Niobium", "92.91"}, {"Mo", "Molybdenum", "95.95"},
	{"Tc", "Technetium", "98.00"}, {"Ru", "Ruthenium", "101.1"},
	{"Rh", "Rhodium", "102.9"}, {"Pd", "Palladium", "106.4"},
	{"Ag", "Silver", "107.9"}, {"Cd", "Cadmium", "112.4"},
	{"In", "Indium", "114.8"}, {"Sn", "Tin", "118.7"},
	{"Sb", "Antimony", "121.8"}, {"Te", "Tellurium", "127.6"},
	{"I", "Iodine", "126.9"}, {"Xe", "Xenon", "131.3"},
	{"Cs", "Caesium", "132.9"}, {"Ba", "Barium", "137.3"},
	{"La", "Lanthanum", "138.9"}, {"Ce", "Cerium", "140.1"},
	{"Pr", "Praseodymium", "140.9"}, {"Nd", "Neodymium", "144.2"},
	{"Pm", "Promethium", "145.0"}, {"Sm", "Samarium", "150.4"},
	{"Eu", "Europium", "152.0"}, {"Gd", "Gadolinium", "157.3"},
	{"Tb", "Terbium", "158.9"}, {"Dy", "Dysprosium", "162.5"},
	{"Ho", "Holmium", "164.9"}, {"Er", "Erbium", "167.3"},
	{"Tm", "Thulium", "168.9"}, {"Yb", "Ytterbium", "173.0"},
	{"Lu", "Lutetium", "175.0"}, {"Hf", "Hafnium", "178.5"},
	{"Ta", "Tantalum", "180.9"}, {"W", "Tungsten", "183.8"},
	{"Re", "Rhenium", "186.2"}, {"Os", "Osmium", "190.2"},
	{"Ir", "Iridium", "192.2"}, {"Pt", "Platinum", "195.1"},
	{"Au", "Gold", "197.0"}, {"Hg", "Mercury", "200.6"},
	{"Tl", "Thallium", "204.4"}, {"Pb", "Lead", "207.2"},
	{"Bi", "Bismuth", "209.0"}, {"Po", "Polonium", "209.0"},
	{"At", "Astatine", "210.0"}, {"Rn", "Radon", "222.0"},
	{"Fr", "Francium", "223.0"}, {"Ra", "Radium", "226.0"},
	{"Ac", "Actinium", "227.0"}, {"Th", "Thorium", "232.0"},
	{"Pa", "Protactinium", "231.0"}, {"U", "Uranium", "238.0"},
	{"Np", "Neptunium", "237.0"}, {"Pu", "Plutonium", "244.0"},
	{"Am", "Americium", "243.0"}, {"Cm", "Curium", "247.0"},
	{"Bk", "Berkelium", "247.0"}, {"Cf", "Californium", "251.0"},
	{"Es", "Einsteinium", "252.0"}, {"Fm", "Fermium", "257.0"},
	{"Md", "Mendelevium", "258.0"}, {"No", "Nobelium", "259.0"},
	{"Lr", "Lawrencium", "262.0"}, {"Rf", "Rutherfordium", "267.0"},
	{"Db", "Dubnium", "270.0"}, {"Sg", "Seaborgium", "271.0"},
	{"Bh", "Bohrium", "270.0"}, {"Hs", "Hassium", "277.0"},
	{"Mt", "Meitnerium", "278.0"}, {"Ds", "Darmstadtium", "281.0"},
	{"Rg", "Roentgenium", "282.0"}, {"Cn", "Copernicium", "285.0"},
	{"Nh", "Nihonium", "286.0"}, {"Fl", "Flerovium", "289.0"},
	{"Mc", "Moscovium", "290.0"}, {"Lv", "Livermorium", "293.0"},
	{"Ts", "Tennessine", "294.0"}, {"Og", "Oganesson", "294.0"},
}
